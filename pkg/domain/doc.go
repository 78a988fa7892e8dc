// Package domain contains the core entities of the field data collection
// service: users, surveys with their jobs and tasks, locations of interest,
// submissions and the mutations clients upload to change them. The types are
// free of persistence concerns so they can be shared across packages.
package domain
