package dashboarding

import (
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/domain"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/apiErrors"
)

// ProductGroup são os registros de um produto, na ordem da tabela
type ProductGroup struct {
	Product string
	Records []*domain.Record
}

// Branches devolve as sucursais distintas na ordem de aparição, precedidas de "Todas"
func Branches(records []*domain.Record) []string {
	seen := make(map[string]struct{})
	branches := []string{domain.AllBranches}

	for _, r := range records {
		if _, ok := seen[r.Branch]; ok {
			continue
		}
		seen[r.Branch] = struct{}{}
		branches = append(branches, r.Branch)
	}

	return branches
}

// FilterByBranch mantém só as linhas da sucursal; "Todas" ou vazio devolve a tabela inteira
func FilterByBranch(records []*domain.Record, branch string) ([]*domain.Record, error) {
	if branch == "" || branch == domain.AllBranches {
		return records, nil
	}

	filtered := make([]*domain.Record, 0, len(records))
	for _, r := range records {
		if r.Branch == branch {
			filtered = append(filtered, r)
		}
	}

	if len(filtered) == 0 {
		return nil, NewDashboardError(ErrUnknownBranch, apiErrors.ErrInvalidRequest, branch)
	}

	return filtered, nil
}

// GroupByProduct agrupa os registros por produto na ordem de aparição
func GroupByProduct(records []*domain.Record) []ProductGroup {
	index := make(map[string]int)
	groups := make([]ProductGroup, 0)

	for _, r := range records {
		pos, ok := index[r.Product]
		if !ok {
			pos = len(groups)
			index[r.Product] = pos
			groups = append(groups, ProductGroup{Product: r.Product})
		}
		groups[pos].Records = append(groups[pos].Records, r)
	}

	return groups
}
