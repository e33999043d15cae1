package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound: el producto/categoría/proveedor solicitado no existe.
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrMissingFields: entrada del cliente incompleta; se detecta antes de
	// cualquier ida a la base de datos.
	ErrMissingFields = errors.New("faltan campos")

	// ErrInvalidCredentials cubre tanto usuario inexistente como contraseña
	// incorrecta. El mensaje es único a propósito: la respuesta no debe
	// permitir enumerar usuarios.
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")

	// ErrUnavailable: el almacén de datos falló o no responde. Nunca se
	// confunde con credenciales inválidas ni se expone el detalle al cliente.
	ErrUnavailable = errors.New("servicio no disponible")
)
