// Package model содержит доменные структуры внеклассных занятий и их состава.
package model

// Activity описывает внеклассное занятие: описание, расписание,
// лимит мест и упорядоченный список записавшихся (в порядке записи).
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Roster отображает название занятия на его запись.
type Roster map[string]Activity

// IsFull сообщает, заняты ли все места.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant проверяет наличие email в списке по точному совпадению строки.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone возвращает копию занятия с собственным слайсом участников.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}
