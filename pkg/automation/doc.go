// Package automation implements the daily content pipeline: picking a
// country and technology, generating an article, scoring its quality
// and publishing it on schedule.
//
// The scheduler runs on a minute tick and re-reads its settings from
// the database on every pass, so admin changes take effect without a
// restart. Articles that score below the quality threshold are kept as
// drafts for manual review instead of being published.
package automation
