package middleware

import (
	"testing"

	"garage-backend/internal/app/role"

	"github.com/stretchr/testify/assert"
)

func TestPolicyForMatchesFirstRule(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		public  bool
		roles   []role.Role
		pattern string
	}{
		{
			name:    "swagger is public",
			path:    "/swagger/index.html",
			public:  true,
			pattern: "/swagger/**",
		},
		{
			name:    "login is public",
			path:    "/auth/login",
			public:  true,
			pattern: "/auth/login",
		},
		{
			name:    "install parts is for mechanics",
			path:    "/car/installPartsInCar/81-PN-PK/3",
			roles:   []role.Role{role.Mechanic, role.Admin},
			pattern: "/car/installPartsInCar/**",
		},
		{
			name:    "car list is wider than car catch-all",
			path:    "/car/list",
			roles:   []role.Role{role.Cashier, role.Mechanic, role.Administrative, role.Admin},
			pattern: "/car/list",
		},
		{
			name:    "repaired cars does not hit exact car list rule",
			path:    "/car/list/repairedCars",
			roles:   []role.Role{role.Cashier, role.Mechanic, role.Administrative, role.Admin},
			pattern: "/car/list/repairedCars/**",
		},
		{
			name:    "car catch-all",
			path:    "/car/delete/81-PN-PK",
			roles:   []role.Role{role.Administrative, role.Admin},
			pattern: "/car/**",
		},
		{
			name:    "receipts are for cashiers",
			path:    "/receipts/generate/81-PN-PK",
			roles:   []role.Role{role.Cashier, role.Admin},
			pattern: "/receipts/**",
		},
		{
			name:    "parts are for back office and mechanics",
			path:    "/parts/add",
			roles:   []role.Role{role.Backoffice, role.Mechanic, role.Admin},
			pattern: "/parts/**",
		},
		{
			name:    "unknown path means any authenticated",
			path:    "/auth/profile",
			roles:   nil,
			pattern: "/auth/profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := PolicyFor(tt.path)
			assert.Equal(t, tt.pattern, policy.Pattern)
			assert.Equal(t, tt.public, policy.Public)
			assert.Equal(t, tt.roles, policy.Roles)
		})
	}
}

func TestMatchPattern(t *testing.T) {
	assert.True(t, matchPattern("/car/**", "/car"))
	assert.True(t, matchPattern("/car/**", "/car/anything/else"))
	assert.False(t, matchPattern("/car/**", "/cars"))
	assert.True(t, matchPattern("/ping", "/ping"))
	assert.False(t, matchPattern("/ping", "/ping/extra"))
}
