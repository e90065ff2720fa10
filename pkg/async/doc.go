// Package async runs functions in goroutines and collects their results as
// futures.
//
// Async starts the work immediately and returns a *Future. Await blocks until
// the result is ready. Settle waits for every future and reports each
// outcome separately, so one failure never hides the others:
//
//	futures := make([]*async.Future[*Notification], 0, len(admins))
//	for _, id := range admins {
//	    futures = append(futures, async.Async(ctx, id, create))
//	}
//	for i, out := range async.Settle(futures...) {
//	    if out.Err != nil {
//	        log.Printf("recipient %s: %v", admins[i], out.Err)
//	    }
//	}
package async
