// Package rangemap mantém tabelas bidirecionais entre os rótulos de faixa
// exibidos na interface e os rótulos aceitos pelo backend.
//
// Várias faixas da interface podem colapsar em uma única faixa do backend.
// No sentido inverso, cada faixa do backend volta para o primeiro rótulo da
// interface declarado para ela. Rótulos desconhecidos passam sem alteração.
package rangemap

import (
	"fmt"
)

// Pair associa um rótulo da interface a um rótulo do backend
type Pair struct {
	UI      string
	Backend string
}

// Table é imutável depois de criada e segura para uso concorrente
type Table struct {
	pairs     []Pair
	toBackend map[string]string
	toUI      map[string]string
}

// New valida os pares e monta a tabela
func New(pairs ...Pair) (*Table, error) {
	t := &Table{
		pairs:     make([]Pair, 0, len(pairs)),
		toBackend: make(map[string]string, len(pairs)),
		toUI:      make(map[string]string, len(pairs)),
	}

	for _, p := range pairs {
		if p.UI == "" || p.Backend == "" {
			return nil, fmt.Errorf("rangemap: par com rótulo vazio: %+v", p)
		}

		if existing, ok := t.toBackend[p.UI]; ok {
			return nil, fmt.Errorf("rangemap: rótulo %q já mapeado para %q", p.UI, existing)
		}

		t.toBackend[p.UI] = p.Backend
		if _, ok := t.toUI[p.Backend]; !ok {
			t.toUI[p.Backend] = p.UI
		}

		t.pairs = append(t.pairs, p)
	}

	// Um rótulo do backend que também é rótulo da interface precisa apontar
	// para si mesmo, senão o mesmo texto teria dois significados.
	for backend := range t.toUI {
		if mapped, ok := t.toBackend[backend]; ok && mapped != backend {
			return nil, fmt.Errorf("rangemap: rótulo %q é ambíguo (interface → %q)", backend, mapped)
		}
	}

	return t, nil
}

// MustNew é como New, mas entra em pânico com uma tabela inválida
func MustNew(pairs ...Pair) *Table {
	t, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return t
}

// ToBackend converte um rótulo da interface. Desconhecidos voltam inalterados.
func (t *Table) ToBackend(label string) string {
	if backend, ok := t.toBackend[label]; ok {
		return backend
	}
	return label
}

// ToUI converte um rótulo do backend. Desconhecidos voltam inalterados.
func (t *Table) ToUI(label string) string {
	if ui, ok := t.toUI[label]; ok {
		return ui
	}
	return label
}

// ManyToBackend converte e remove duplicatas mantendo a ordem da primeira ocorrência
func (t *Table) ManyToBackend(labels []string) []string {
	return convert(labels, t.ToBackend)
}

// ManyToUI converte e remove duplicatas mantendo a ordem da primeira ocorrência
func (t *Table) ManyToUI(labels []string) []string {
	return convert(labels, t.ToUI)
}

// UILabels retorna os rótulos da interface na ordem de declaração
func (t *Table) UILabels() []string {
	labels := make([]string, 0, len(t.pairs))
	for _, p := range t.pairs {
		labels = append(labels, p.UI)
	}
	return labels
}

// BackendLabels retorna os rótulos do backend sem repetição, na ordem de declaração
func (t *Table) BackendLabels() []string {
	seen := make(map[string]struct{}, len(t.toUI))
	labels := make([]string, 0, len(t.toUI))
	for _, p := range t.pairs {
		if _, ok := seen[p.Backend]; ok {
			continue
		}
		seen[p.Backend] = struct{}{}
		labels = append(labels, p.Backend)
	}
	return labels
}

// SameClass indica se dois rótulos da interface colapsam na mesma faixa do backend
func (t *Table) SameClass(a, b string) bool {
	return t.ToBackend(a) == t.ToBackend(b)
}

func convert(labels []string, fn func(string) string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		mapped := fn(label)
		if _, ok := seen[mapped]; ok {
			continue
		}
		seen[mapped] = struct{}{}
		out = append(out, mapped)
	}
	return out
}
