// Package pricing contiene los servicios de dominio puros del rastreador de precios:
// historial mensual, gasto por categoría/tipo y filtrado del catálogo.
//
// Ninguna función de este paquete hace I/O ni guarda estado: recibe instantáneas
// ya leídas del almacén y devuelve valores nuevos.
package pricing
