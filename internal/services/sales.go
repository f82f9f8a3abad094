package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"ravepayments/internal/domain"
)

type salesService struct {
	recordRepo domain.RecordRepository
}

// NewSalesService creates a SalesService over the given record repository.
func NewSalesService(recordRepo domain.RecordRepository) domain.SalesService {
	return &salesService{recordRepo: recordRepo}
}

// Recompute derives totals from a single linear scan over records. Kind is
// matched case-insensitively against "ticket"/"table"; any other value is
// silently excluded from both totals. Per-member entries default to zero for
// members not seen before. The leaderboard is sorted by revenue descending
// with ties keeping encounter order.
func (s *salesService) Recompute(records []*domain.Record) domain.Totals {
	var totals domain.Totals
	memberIndex := make(map[string]int)
	leaderboard := []domain.MemberTotal{}

	for _, r := range records {
		switch strings.ToLower(strings.TrimSpace(r.Kind)) {
		case "ticket":
			totals.TicketCount++
			totals.TicketRevenue += r.AmountPaid
		case "table":
			totals.TableRevenue += r.AmountPaid
		default:
			continue
		}

		i, seen := memberIndex[r.MemberName]
		if !seen {
			i = len(leaderboard)
			memberIndex[r.MemberName] = i
			leaderboard = append(leaderboard, domain.MemberTotal{Name: r.MemberName})
		}
		leaderboard[i].Count++
		leaderboard[i].Revenue += r.AmountPaid
	}

	sort.SliceStable(leaderboard, func(a, b int) bool {
		return leaderboard[a].Revenue > leaderboard[b].Revenue
	})
	totals.Leaderboard = leaderboard
	return totals
}

// CurrentTotals enumerates all persisted records and recomputes totals from
// scratch. There is no cached or incremental state; every call rescans.
func (s *salesService) CurrentTotals(ctx context.Context) (domain.Totals, []*domain.Record, error) {
	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return domain.Totals{}, nil, fmt.Errorf("list records: %w", err)
	}
	return s.Recompute(records), records, nil
}
