package service

import (
	"errors"

	"github.com/alexanderramin/futureself/internal/repository"
)

func errorsIsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
