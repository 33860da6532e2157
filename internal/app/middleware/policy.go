package middleware

import (
	"strings"

	"garage-backend/internal/app/role"
)

// RoutePolicy - правило доступа: шаблон пути и список допустимых ролей.
// Пустой список ролей при Public=false означает "любой аутентифицированный".
type RoutePolicy struct {
	Pattern string
	Roles   []role.Role
	Public  bool
}

// Policies - таблица доступа маршрут -> роли. Порядок важен:
// берётся первое совпадение, как в исходной конфигурации безопасности.
var Policies = []RoutePolicy{
	{Pattern: "/swagger/**", Public: true},
	{Pattern: "/ping", Public: true},
	{Pattern: "/auth/login", Public: true},

	{Pattern: "/appointments/**", Roles: []role.Role{role.Mechanic, role.Administrative, role.Admin}},
	{Pattern: "/car/addRepairingActionsInCar/**", Roles: []role.Role{role.Mechanic, role.Admin}},
	{Pattern: "/car/installPartsInCar/**", Roles: []role.Role{role.Mechanic, role.Admin}},
	{Pattern: "/car/list", Roles: []role.Role{role.Cashier, role.Mechanic, role.Administrative, role.Admin}},
	{Pattern: "/car/list/repairedCars/**", Roles: []role.Role{role.Cashier, role.Mechanic, role.Administrative, role.Admin}},
	{Pattern: "/car/list/unRepairedCars/**", Roles: []role.Role{role.Cashier, role.Mechanic, role.Administrative, role.Admin}},
	{Pattern: "/car/changeStatusToRepaired/**", Roles: []role.Role{role.Mechanic, role.Administrative, role.Admin}},
	{Pattern: "/car/**", Roles: []role.Role{role.Administrative, role.Admin}},
	{Pattern: "/customer/list", Roles: []role.Role{role.Mechanic, role.Administrative, role.Admin}},
	{Pattern: "/customer/**", Roles: []role.Role{role.Administrative, role.Admin}},
	{Pattern: "/receipts/**", Roles: []role.Role{role.Cashier, role.Admin}},
	{Pattern: "/repairOperations/**", Roles: []role.Role{role.Backoffice, role.Mechanic, role.Admin}},
	{Pattern: "/parts/**", Roles: []role.Role{role.Backoffice, role.Mechanic, role.Admin}},
	{Pattern: "/repairSchedule/**", Roles: []role.Role{role.Administrative, role.Admin}},
	{Pattern: "/vouchers/**", Roles: []role.Role{role.Mechanic, role.Cashier, role.Admin}},
}

// matchPattern поддерживает точные пути и суффикс /**
func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}

// PolicyFor возвращает первое подходящее правило.
// Для путей вне таблицы действует "любой аутентифицированный".
func PolicyFor(path string) RoutePolicy {
	for _, p := range Policies {
		if matchPattern(p.Pattern, path) {
			return p
		}
	}
	return RoutePolicy{Pattern: path}
}
