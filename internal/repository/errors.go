package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если занятия с таким названием нет в реестре.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp возвращается при повторной записи того же email.
	ErrAlreadySignedUp = errors.New("student already signed up")

	// ErrActivityFull возвращается, если все места на занятии заняты.
	ErrActivityFull = errors.New("activity is at full capacity")

	// ErrParticipantNotFound возвращается, если участник не найден при отписке.
	ErrParticipantNotFound = errors.New("participant not found")
)
