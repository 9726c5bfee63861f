package users

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации с занятым email
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Отдельной ошибки "пользователь не найден" нет, чтобы не раскрывать
	// существование аккаунта.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAdmin возвращается при попытке входа в админку без роли admin
	ErrNotAdmin = errors.New("admin role required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
