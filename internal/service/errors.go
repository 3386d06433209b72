package service

import "errors"

var (
	// ErrNoProgramAssigned — у пользователя нет назначенной программы.
	ErrNoProgramAssigned = errors.New("user has no program assigned")

	// ErrProgressConflict — запись позиции дважды проиграла гонку
	// другому писателю.
	ErrProgressConflict = errors.New("concurrent progress update conflict")

	// внутренний сигнал: проигранная гонка, можно повторить один раз
	errConflictRetry = errors.New("progress version conflict")
)
