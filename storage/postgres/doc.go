// Package postgres provides the PostgreSQL implementation of the auth
// storage interfaces on top of the pgx connection pool.
//
// Connect establishes the pool with exponential-backoff retry so services
// restarting alongside the database do not fail on the first refused
// connection. Migrate applies the embedded goose migrations through a
// database/sql adapter over the same pool.
//
//	pool, err := postgres.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := postgres.Migrate(ctx, pool, log); err != nil {
//		log.Fatal(err)
//	}
//
//	store := postgres.NewStore(pool)
//	manager := session.NewManager(store.Sessions())
//
// All store methods participate in a surrounding transaction when one is
// attached to the context with WithTx.
package postgres
