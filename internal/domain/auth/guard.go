package auth

// Decision is the route guard's verdict for a protected navigation target.
type Decision int

const (
	// DecisionLoading renders the placeholder while the startup session
	// check is unresolved, regardless of any stale user value.
	DecisionLoading Decision = iota
	// DecisionRedirectHome sends an unauthenticated visitor to the home route.
	DecisionRedirectHome
	// DecisionAllow lets the navigation proceed.
	DecisionAllow
)

// Decide is the route guard: a pure function of auth state. Loading
// always wins; once resolved, access requires a present user.
func Decide(state State) Decision {
	if state.Loading {
		return DecisionLoading
	}
	if state.User == nil {
		return DecisionRedirectHome
	}
	return DecisionAllow
}
