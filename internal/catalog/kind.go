package catalog

import "fmt"

// Kind — короткий человекочитаемый вид курса. Фиксированное перечисление,
// не совпадает с непрозрачным идентификатором каталога.
type Kind string

const (
	KindYoga        Kind = "yoga"
	KindStretching  Kind = "stretching"
	KindFitness     Kind = "fitness"
	KindStepAerobic Kind = "stepaerobics"
	KindBodyflex    Kind = "bodyflex"
)

// Kinds перечисляет все известные виды курсов.
func Kinds() []Kind {
	return []Kind{KindYoga, KindStretching, KindFitness, KindStepAerobic, KindBodyflex}
}

// ParseKind разбирает строку в вид курса. Неизвестное значение — явная
// ошибка, без тихого проваливания.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindYoga, KindStretching, KindFitness, KindStepAerobic, KindBodyflex:
		return Kind(s), nil
	}
	return "", fmt.Errorf("неизвестный вид курса: %q", s)
}

// IDMap — двунаправленное соответствие между непрозрачным идентификатором
// каталога и видом курса.
type IDMap struct {
	kindByID map[string]Kind
	idByKind map[Kind]string
}

// NewIDMap строит соответствие из таблицы идентификатор → вид.
func NewIDMap(pairs map[string]Kind) *IDMap {
	m := &IDMap{
		kindByID: make(map[string]Kind, len(pairs)),
		idByKind: make(map[Kind]string, len(pairs)),
	}
	for id, kind := range pairs {
		m.kindByID[id] = kind
		m.idByKind[kind] = id
	}
	return m
}

// DefaultIDMap — соответствие для идентификаторов боевого каталога.
func DefaultIDMap() *IDMap {
	return NewIDMap(map[string]Kind{
		"6i67sm": KindStepAerobic,
		"ab1c3f": KindYoga,
		"kfpq8e": KindStretching,
		"q02a6i": KindBodyflex,
		"ypox9r": KindFitness,
	})
}

// KindByID возвращает вид курса по идентификатору каталога.
func (m *IDMap) KindByID(id string) (Kind, bool) {
	kind, ok := m.kindByID[id]
	return kind, ok
}

// IDByKind возвращает идентификатор каталога по виду курса.
func (m *IDMap) IDByKind(kind Kind) (string, bool) {
	id, ok := m.idByKind[kind]
	return id, ok
}

// Resolve принимает слаг либо идентификатор каталога и возвращает вид курса.
func (m *IDMap) Resolve(s string) (Kind, bool) {
	if kind, err := ParseKind(s); err == nil {
		return kind, true
	}
	return m.KindByID(s)
}

// CanonicalID возвращает настоящий идентификатор каталога для слага либо
// идентификатора. Именно он хранится в списке курсов пользователя.
func (m *IDMap) CanonicalID(s string) (string, bool) {
	if kind, err := ParseKind(s); err == nil {
		return m.IDByKind(kind)
	}
	if _, ok := m.kindByID[s]; ok {
		return s, true
	}
	return "", false
}
