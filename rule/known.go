package rule

// Known holds a small registry of named machines used by tests, examples,
// and `beaver run --known=<name>`, mirroring `original_source/turing.hpp`'s
// `namespace known`. Every entry must Parse without error; this is
// asserted in known_test.go.
var Known = map[string]string{
	"bb2":           "1RB1LB_1LA---",
	"bb3":           "1RB---_1LB0RC_1LC1LA",
	"bb4":           "1RB1LB_1LA0LC_---1LD_1RD0RA",
	"bb5":           "1RB1LC_1RC1RB_1RD0LE_1LA1LD_---0LA",
	"boyd-johnson":  "1RB0RC_1LB1LD_0RA0LD_1LA1RC",
	"offset-minus1": "1RB1LC_1RD1RB_0RD0RC_1LD1LA",
	"small-cycler":  "1RB---_1RC1RC_1LC1LB",
	"quad-bouncer":  "1RB0RC_1RC1LC_1LD1RA_0LB0LA",
	"cubic-bell":    "1RB0LB_1RC1LB_0LD0RD_1LA1RD",
}
