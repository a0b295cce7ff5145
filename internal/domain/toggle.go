package domain

// Toggle remove o item se ele estiver na lista, senão adiciona ao final.
// A lista original não é alterada.
func Toggle(items []string, item string) []string {
	out := make([]string, 0, len(items)+1)
	found := false
	for _, existing := range items {
		if existing == item {
			found = true
			continue
		}
		out = append(out, existing)
	}

	if !found {
		out = append(out, item)
	}

	return out
}

// Contains verifica se o item está na lista
func Contains(items []string, item string) bool {
	for _, existing := range items {
		if existing == item {
			return true
		}
	}
	return false
}
