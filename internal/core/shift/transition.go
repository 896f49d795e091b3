package shift

var transitions = map[Status][]Status{
	StatusOpen:           {StatusOffered, StatusAssigned, StatusCancelled},
	StatusOffered:        {StatusAssigned, StatusOpen, StatusCancelled},
	StatusAssigned:       {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress:     {StatusCompleted},
	StatusCompleted:      {StatusAgencyApproved},
	StatusAgencyApproved: {StatusEmployerApproved},
}

// CanTransition は from から to への遷移が許されるかを返します。
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal は以降の遷移がない状態かを返します。
func Terminal(s Status) bool {
	return len(transitions[s]) == 0
}

// IsValidStatus は既知の状態かを返します。
func IsValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusOffered, StatusAssigned, StatusInProgress, StatusCompleted,
		StatusAgencyApproved, StatusEmployerApproved, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}
