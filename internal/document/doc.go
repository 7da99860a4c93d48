// Package document provides the queryable model of one fetched HTML page.
//
// A Document wraps the raw fetched bytes together with a parsed tag tree and
// exposes the query operations the checks need: selector lookups, attribute
// reads that distinguish "absent" from "present but empty", and
// attribute-pattern matching.
//
// Design decision: We parse with golang.org/x/net/html and query through
// github.com/PuerkitoBio/goquery rather than regex because:
//  1. The parser recovers from malformed HTML common on the web, so a bad
//     page still yields a best-effort tree instead of an error
//  2. goquery provides CSS selector queries and attribute access with
//     presence information
//  3. More maintainable than complex regex patterns
//
// Documents are immutable: they are created once per audit from the fetched
// bytes and only read afterward, so concurrent checks need no locking.
package document
