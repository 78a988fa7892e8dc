package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ground/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob enqueues a River job through the storage's executor. Inside a
// transaction the job only becomes visible to workers once the transaction
// commits, so a job is never picked up before the rows it refers to exist.
//
// Insert-only clients need no queues or workers. The returned bool is false
// when River skipped the insert because of the job's unique options.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cerr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cerr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cerr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert job: unsupported executor %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job already queued", zap.String("kind", args.Kind()), zap.Int64("jobId", res.Job.ID))

		return false, nil
	}

	return true, nil
}
