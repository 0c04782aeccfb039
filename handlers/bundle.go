// File: handlers/bundle.go
package handlers

import (
	studentRepo "tiffin/database/repository/student"
	"tiffin/services/khata"
	"tiffin/services/kitchen"
	"tiffin/services/menu"
	"tiffin/services/order"
)

// HandlerBundle groups the services behind the HTTP surface. Routes call its
// methods; main wires the concrete implementations.
type HandlerBundle struct {
	KitchenSvc  kitchen.KitchenService
	MenuSvc     menu.MenuService
	OrderSvc    order.OrderService
	KhataSvc    khata.KhataService
	StudentRepo studentRepo.StudentRepository
}
