package services

// ServiceContainer aggregates every service facade for handler wiring.
type ServiceContainer struct {
	AccountSvc        AccountSvcFacade
	PostingSvc        PostingSvcFacade
	ReversalSvc       ReversalSvcFacade
	ReconciliationSvc ReconciliationSvcFacade
	ReportingSvc      ReportingSvcFacade
	PartySvc          PartySvcFacade
	ItemSvc           ItemSvcFacade
}
