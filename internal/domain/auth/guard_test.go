package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

func TestDecide(t *testing.T) {
	user := &model.User{ID: "u1", Role: model.RoleApplicant}

	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{name: "loading without user", state: State{Loading: true}, want: DecisionLoading},
		{name: "loading with user still shows placeholder", state: State{Loading: true, User: user}, want: DecisionLoading},
		{name: "resolved without user redirects home", state: State{}, want: DecisionRedirectHome},
		{name: "resolved with user allows", state: State{User: user}, want: DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state))
		})
	}
}
