// Package rule defines the Transition Rule Table for a Turing machine and
// its textual codec (TNF — "tree-normal form" code).
//
// A Rule is a fixed-capacity N×S array of Transition, where N is the
// number of states and S is the number of symbols. Parse decodes the
// standard TNF string grammar ("1RB0RC_1LB1LD_...") into a Rule; Write
// is its inverse. LexicalNormalForm canonicalises state labelling by the
// order states are first reached from (state 0, symbol 0).
//
// Errors:
//
//	ErrEmptyCode      - the TNF string was empty after trimming.
//	ErrRowLength      - a group's triple count does not match the others.
//	ErrBadSymbol      - a written symbol is out of [0, S).
//	ErrBadDirection   - a direction character was not 'L' or 'R'.
//	ErrBadState       - a target state letter is out of range.
package rule
