package auth

import "sort"

// Built-in roles. Admin is not listed here: IsAdmin bypasses permission
// checks entirely, and catalog deletion stays admin-only.
const (
	RoleSupervisor  = "supervisor"
	RoleCajero      = "cajero"
	RoleAlmacenista = "almacenista"
)

var catalogNames = []string{
	"tax", "currency", "payment-method", "product", "category",
	"client", "supplier", "store", "register",
}

var documentNames = []string{"sale", "purchase"}

func catalogPerm(name, op string) string {
	return "catalog:" + name + ":" + op
}

func documentPerm(name, op string) string {
	return "document:" + name + ":" + op
}

func catalogReads() []string {
	perms := make([]string, 0, len(catalogNames))
	for _, name := range catalogNames {
		perms = append(perms, catalogPerm(name, "read"))
	}
	return perms
}

func catalogWrites() []string {
	var perms []string
	for _, name := range catalogNames {
		perms = append(perms, catalogPerm(name, "create"), catalogPerm(name, "update"))
	}
	return perms
}

func documentOps(name string, ops ...string) []string {
	perms := make([]string, 0, len(ops))
	for _, op := range ops {
		perms = append(perms, documentPerm(name, op))
	}
	return perms
}

// rolePermissions maps each built-in role to its grants. Cashiers work
// the register: they save pending sales and collect client payments but
// cannot issue. Supervisors issue documents and maintain catalogs.
// Warehouse staff run the purchasing side.
var rolePermissions = map[string][]string{
	RoleCajero: concat(
		catalogReads(),
		documentOps("sale", "read", "create", "update"),
		[]string{catalogPerm("client", "update")},
	),
	RoleAlmacenista: concat(
		catalogReads(),
		documentOps("purchase", "read", "create", "update", "issue"),
		[]string{catalogPerm("product", "update")},
	),
	RoleSupervisor: concat(
		catalogReads(),
		catalogWrites(),
		documentOps("sale", "read", "create", "update", "issue"),
		documentOps("purchase", "read", "create", "update", "issue"),
	),
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// PermissionsForRoles flattens role grants into a sorted, deduplicated
// permission list. Unknown roles grant nothing.
func PermissionsForRoles(roles []string) []string {
	seen := make(map[string]struct{})
	for _, role := range roles {
		for _, perm := range rolePermissions[role] {
			seen[perm] = struct{}{}
		}
	}

	perms := make([]string, 0, len(seen))
	for perm := range seen {
		perms = append(perms, perm)
	}
	sort.Strings(perms)
	return perms
}

// RoleGrants returns a copy of the role-permission mapping.
func RoleGrants() map[string][]string {
	out := make(map[string][]string, len(rolePermissions))
	for role, perms := range rolePermissions {
		out[role] = append([]string(nil), perms...)
	}
	return out
}

// AllPermissions returns every permission the routes guard with, sorted.
func AllPermissions() []string {
	var perms []string
	for _, name := range catalogNames {
		for _, op := range []string{"read", "create", "update", "delete"} {
			perms = append(perms, catalogPerm(name, op))
		}
	}
	for _, name := range documentNames {
		for _, op := range []string{"read", "create", "update", "delete", "issue"} {
			perms = append(perms, documentPerm(name, op))
		}
	}
	sort.Strings(perms)
	return perms
}
