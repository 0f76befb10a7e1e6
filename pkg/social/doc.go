// Package social formats and schedules social media shares for
// published posts.
//
// Each platform has its own character and hashtag limits. Shares are
// staggered across platforms and delivered by the automation scheduler
// when they come due.
package social
