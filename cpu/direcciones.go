package cpu

// AddressToPage traduce una dirección lógica a su número de página por
// división entera. Función pura, sin estado ni modos de falla.
func AddressToPage(address int, pageSize int) int {
	return address / pageSize
}

// AddressesToPages traduce una secuencia completa de direcciones al flujo de
// páginas correspondiente.
func AddressesToPages(addresses []int, pageSize int) []int {
	pages := make([]int, len(addresses))
	for i, address := range addresses {
		pages[i] = AddressToPage(address, pageSize)
	}
	return pages
}
