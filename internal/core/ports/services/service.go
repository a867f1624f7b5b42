package services

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	User     UserSvcFacade
	Order    OrderSvcFacade
	Tracking TrackingSvcFacade
	Finance  FinanceSvcFacade
}
