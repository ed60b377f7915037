// Package fixture provides types and functions for Beitar Jerusalem fixtures.
//
// The fixture package handles match representation, kickoff date parsing, and
// selection of home matches at Teddy Stadium. Each match is assigned a
// deterministic SHA1-based ID generated from the two team names and the raw
// date text, enabling reliable tracking across runs.
package fixture
