package domain

// ResourceType тип бронируемого ресурса
type ResourceType string

const (
	ResourceSauna   ResourceType = "sauna"
	ResourceVeranda ResourceType = "veranda"
)

// ResourcePolicy правила ресурса: минимальная длительность брони и
// технологический перерыв между соседними бронями одного ресурса
type ResourcePolicy struct {
	MinDurationMinutes int
	GapMinutes         int
}

// resourcePolicies таблица правил по типам ресурсов.
// Новый ресурс добавляется сюда, алгоритм проверки конфликтов не меняется.
var resourcePolicies = map[ResourceType]ResourcePolicy{
	ResourceSauna:   {MinDurationMinutes: 240, GapMinutes: 120},
	ResourceVeranda: {MinDurationMinutes: 120, GapMinutes: 60},
}

// IsValid проверяет, что тип ресурса известен системе
func (rt ResourceType) IsValid() bool {
	_, ok := resourcePolicies[rt]
	return ok
}

// PolicyFor возвращает правила для типа ресурса
func PolicyFor(rt ResourceType) (ResourcePolicy, bool) {
	policy, ok := resourcePolicies[rt]
	return policy, ok
}
