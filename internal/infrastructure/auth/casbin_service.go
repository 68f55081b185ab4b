package auth

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// rbacModel matches a role subject against path patterns. The policy set is
// small and fixed (three dashboard areas), so it lives in memory rather than
// behind a storage adapter.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`

type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds an enforcer over the in-memory RBAC model and seeds
// the dashboard policies: each role owns exactly its own area.
func NewCasbinService() (*CasbinService, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	E, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{"role_admin", "/admin", "GET"},
		{"role_admin", "/admin/*", "GET"},
		{"role_dosen", "/dosen", "GET"},
		{"role_dosen", "/dosen/*", "GET"},
		{"role_mahasiswa", "/mahasiswa", "GET"},
		{"role_mahasiswa", "/mahasiswa/*", "GET"},
	}
	for _, p := range policies {
		if _, err := E.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &CasbinService{E}, nil
}

// CheckAccess implements domain.PolicyService.
func (s *CasbinService) CheckAccess(role, path, method string) (bool, error) {
	return s.E.Enforce("role_"+role, path, method)
}
