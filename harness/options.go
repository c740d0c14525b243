package harness

import "github.com/viant/forge/verify"

// Options configures a Run beyond what an individual TestCase states:
// the verifier feature toggles a batch of test cases shares.
type Options struct {
	Verify verify.Options
}

// DefaultOptions verifies with the verifier's default (most
// conservative) feature set.
var DefaultOptions = Options{Verify: verify.DefaultOptions}
