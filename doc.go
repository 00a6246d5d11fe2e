// Package sm2 implements an enhanced SuperMemo-2 spaced repetition scheduler.
//
// sm2 provides a pure-Go Scheduler for computing review intervals from graded
// recall quality, with adjustments for response time, confidence, hints, and
// partial credit. Query helpers cover due-card selection, upcoming-review
// grouping, session planning, streaks, and display formatting.
//
// Basic usage:
//
//	s, err := sm2.NewScheduler(sm2.SchedulerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	snap := sm2.NewSnapshot("card-1", "user-1", time.Now())
//	res := s.Review(&snap, sm2.ReviewEvent{Quality: 4, ResponseTimeMs: 12000, Confidence: 0.8}, time.Now())
package sm2
