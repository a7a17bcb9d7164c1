package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrEmptyCart              = errors.New("el carrito no tiene ítems")
	ErrInvalidQuantity        = errors.New("cantidad inválida: debe ser mayor que cero")
	ErrMissingPaymentDetails  = errors.New("pago mixto requiere el detalle de montos pagados")
	ErrInsufficientPayment    = errors.New("el monto pagado no cubre el total de la venta")
	ErrAlreadyPaid            = errors.New("la cuenta ya está pagada")
	ErrDuplicateInvoiceNumber = errors.New("el número de factura ya existe")
	ErrCreditLimitExceeded    = errors.New("la venta a crédito excede el límite del cliente")
	ErrInsufficientFunds      = errors.New("fondos insuficientes en la cuenta")
	ErrNoActiveRate           = errors.New("no hay tasa de cambio activa")
)
