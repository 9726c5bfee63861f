package domain

import "errors"

var (
	// ErrInvalidStatus возвращается при неизвестном статусе бронирования
	ErrInvalidStatus = errors.New("domain: invalid booking status")

	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("domain: invalid time range")

	// ErrTransitionNotAllowed возвращается, когда переход статусов невозможен
	// независимо от роли (из терминального статуса, самопереход, confirmed -> pending)
	ErrTransitionNotAllowed = errors.New("domain: status transition not allowed")

	// ErrTransitionForbidden возвращается, когда переход существует,
	// но роль вызывающего не даёт права его выполнить
	ErrTransitionForbidden = errors.New("domain: caller is not allowed to perform this transition")

	// ErrConfirmedNeedsAdmin возвращается, когда не-админ пытается отменить или
	// удалить подтверждённое бронирование. Сообщение отдаётся пользователю как есть.
	ErrConfirmedNeedsAdmin = errors.New("domain: cannot cancel a confirmed booking, please contact admin")
)

// Role роль вызывающего из аутентифицированной сессии
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsAdmin возвращает true для административной роли
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ParseRole конвертирует строку в Role с валидацией
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errors.New("domain: unknown role")
	}
}

// CanTransition проверяет переход статусов по таблице авторизации.
//
//	pending   -> confirmed  только админ
//	pending   -> rejected   только админ
//	pending   -> cancelled  владелец или админ
//	confirmed -> rejected   только админ
//	confirmed -> cancelled  только админ (владельцу - ErrConfirmedNeedsAdmin)
//
// Терминальные статусы (rejected, cancelled) переходов не имеют,
// самопереходы и возврат в pending запрещены.
func CanTransition(from, to BookingStatus, role Role, isOwner bool) error {
	if from == to {
		return ErrTransitionNotAllowed
	}

	switch from {
	case StatusPending:
		switch to {
		case StatusConfirmed, StatusRejected:
			if !role.IsAdmin() {
				return ErrTransitionForbidden
			}
			return nil
		case StatusCancelled:
			if role.IsAdmin() || isOwner {
				return nil
			}
			return ErrTransitionForbidden
		}
	case StatusConfirmed:
		switch to {
		case StatusRejected:
			if !role.IsAdmin() {
				return ErrTransitionForbidden
			}
			return nil
		case StatusCancelled:
			if !role.IsAdmin() {
				return ErrConfirmedNeedsAdmin
			}
			return nil
		}
	}

	return ErrTransitionNotAllowed
}

// CanRemove проверяет право на физическое удаление бронирования.
// Удалять чужие бронирования может только админ; подтверждённое бронирование
// не-админ удалить не может даже своё.
func CanRemove(status BookingStatus, role Role, isOwner bool) error {
	if !role.IsAdmin() && !isOwner {
		return ErrTransitionForbidden
	}
	if status == StatusConfirmed && !role.IsAdmin() {
		return ErrConfirmedNeedsAdmin
	}
	return nil
}
