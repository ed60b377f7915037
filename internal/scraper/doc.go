// Package scraper provides HTTP fetching and HTML parsing for the Beitar
// Jerusalem fixture list.
//
// The scraper package fetches the public schedule page from beitarfc.co.il and
// extracts one Match per game listing, including team names, venue, round and
// kickoff date text. Entries missing either team name are discarded; venue,
// date and round are optional and their absence only limits what later stages
// can do with the match.
package scraper
