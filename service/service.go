package service

import (
	"github.com/futebolada/futebolada-server/repository"
)

// Service bundles the account operations with the pass-through CRUD.
type Service struct {
	*accountService
	*weekService
}

func New(ar repository.Admin, pr repository.Player, wr repository.Week) *Service {
	return &Service{
		accountService: newAccountSrv(ar, pr),
		weekService:    newWeekSrv(wr),
	}
}
