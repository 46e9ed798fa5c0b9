package matches

import "context"

// StatisticsForUser cuenta los matches del usuario por estado.
// Un usuario sin perfiles obtiene todos los contadores en cero.
//
// pendingSent / pendingReceived se cuentan por dirección; accepted y declined
// se cuentan una sola vez por match aunque el usuario participe en ambos
// extremos (cosa que el invariante de dueños distintos impide de todos modos).
func (s *Service) StatisticsForUser(ctx context.Context, userID string) (Statistics, error) {
	ids, err := s.ownedProfileIDs(ctx, userID)
	if err != nil {
		return Statistics{}, err
	}
	if len(ids) == 0 {
		return Statistics{}, nil
	}

	owned := make(map[string]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}

	items, err := s.repo.ListByProfiles(ctx, ids, "")
	if err != nil {
		return Statistics{}, err
	}

	var st Statistics
	for _, m := range items {
		switch m.Status {
		case StatusPending:
			if owned[m.FromProfileID] {
				st.PendingSent++
			}
			if owned[m.ToProfileID] {
				st.PendingReceived++
			}
		case StatusAccepted:
			st.Accepted++
		case StatusDeclined:
			st.Declined++
		}
	}

	st.Total = st.PendingSent + st.PendingReceived + st.Accepted + st.Declined
	return st, nil
}
