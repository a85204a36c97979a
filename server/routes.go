package server

func (s *Server) setupRoutes() {
	s.app.Post("/auth/login", s.loginHandler)
	s.app.Post("/auth/logout", s.logoutHandler)
	s.app.Get("/auth/me", s.meHandler, s.requireSession)

	s.app.Get("/inventory/products", s.listProductsHandler, s.requireSession)
	s.app.Post("/inventory/products", s.createProductHandler, s.requireSession)
	s.app.Put("/inventory/products", s.updateProductHandler, s.requireSession)
	s.app.Delete("/inventory/products", s.deleteProductHandler, s.requireSession)
	s.app.Post("/inventory/visual-search", s.visualSearchHandler, s.requireSession)

	s.app.Get("/crm/leads", s.listLeadsHandler, s.requireSession)
	s.app.Post("/crm/leads", s.createLeadHandler, s.requireSession)

	s.app.Get("/chat/conversations", s.listConversationsHandler, s.requireSession)
	s.app.Get("/chat/conversations/:id/recent", s.recentMessagesHandler, s.requireSession)
	s.app.Get("/chat/messages", s.listMessagesHandler, s.requireSession)
	s.app.Post("/chat/send", s.sendMessageHandler, s.requireSession)

	s.app.Get("/ws/messages", s.websocketHandler)
	s.app.Get("/health", s.healthCheckHandler)
}
