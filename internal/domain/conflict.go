package domain

// FindConflict проверяет совместимость кандидата со всеми существующими
// подтвержденными бронями того же ресурса и даты.
//
// Кандидат совместим с бронью e, если между ними выдержан технологический
// перерыв: конец e плюс перерыв ресурса e не позже начала кандидата, либо
// конец кандидата плюс перерыв ресурса кандидата не позже начала e.
// Перерыв "после существующей" берется из правил её ресурса, перерыв
// "после кандидата" — из правил кандидата: выборка и так ограничена одним
// ресурсом, но правило сформулировано устойчиво к смешанным наборам.
//
// Возвращает первую несовместимую бронь или nil, если конфликтов нет.
// Существующие записи с нечитаемым временем пропускаются как неблокирующие.
// Кандидат должен быть предварительно провалидирован (ValidateSlot).
func FindConflict(candidate *Booking, existing []*Booking) *Booking {
	candStart, err := candidate.StartTime.Minutes()
	if err != nil {
		return nil
	}
	candEnd, err := candidate.EndTime.Minutes()
	if err != nil {
		return nil
	}

	candPolicy, ok := PolicyFor(candidate.ResourceType)
	if !ok {
		return nil
	}

	for _, e := range existing {
		existStart, err := e.StartTime.Minutes()
		if err != nil {
			continue
		}
		existEnd, err := e.EndTime.Minutes()
		if err != nil {
			continue
		}

		existPolicy, ok := PolicyFor(e.ResourceType)
		if !ok {
			continue
		}

		if existEnd+existPolicy.GapMinutes <= candStart ||
			candEnd+candPolicy.GapMinutes <= existStart {
			continue
		}

		return e
	}

	return nil
}
