// Package jobs implements background job processing for the Roamly API.
//
// The jobs package contains scheduled tasks that run independently of
// HTTP request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - UploadSweeper: removes stored images no trip references anymore
//
// # Lifecycle
//
// Jobs expose Start and Stop; Start launches a ticker goroutine and
// Stop waits for it to finish:
//
//	sweeper := jobs.NewUploadSweeper(jobs.UploadSweeperConfig{
//	    Trips: tripRepo,
//	    Store: blobStore,
//	})
//	sweeper.Start()
//	defer sweeper.Stop()
//
// # Error Handling
//
// Jobs log errors but don't crash the application; a failed run is
// retried on the next tick.
package jobs
