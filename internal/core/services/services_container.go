package services

import (
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
)

// NewServiceContainer wires the service facades over a set of repositories.
func NewServiceContainer(
	userRepo portsrepo.UserRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:     NewUserService(userRepo),
		Order:    NewOrderService(orderRepo, userRepo),
		Tracking: NewTrackingService(orderRepo),
		Finance:  NewFinanceService(txnRepo, orderRepo, userRepo),
	}
}
