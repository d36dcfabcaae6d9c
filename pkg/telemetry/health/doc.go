// Package health provides liveness and readiness probes for watch
// sessions.
//
// A watch session is the only long-running confvet process, so it is the
// only place these endpoints exist: they are mounted on the same listener
// as the Prometheus metrics endpoint. Liveness answers as long as the
// process runs; readiness runs the registered component probes, which for
// a watch session means checking that the watched path still exists.
//
// # Usage
//
//	checker := health.New(0)
//	checker.Register("watch_path", func(ctx context.Context) error {
//		_, err := os.Stat(path)
//		return err
//	})
//	checker.Mount(mux)
package health
