package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// Claves de la caché de consultas. Los prefijos agrupan lo que se invalida junto.
const (
	keyCompanies     = "firmen"
	keyParks         = "mietparks"
	keyCustomers     = "kunden"
	keyDevices       = "geraete:"
	keyDevicesAll    = "geraete:alle"
	keyDevicePages   = "geraete:page:"
	keyRentals       = "vermietungen"
	keyInvoices      = "rechnungen:"
	keyMaintenance   = "wartungen"
	lookupDeviceSize = 10000
)

func devicePageKey(status, location string, page int) string {
	return fmt.Sprintf("%s%s:%s:%d", keyDevicePages, status, location, page)
}

// devicePagesKey prefijo de todas las páginas de un mismo filtro.
func devicePagesKey(f entity.DeviceFilter) string {
	return fmt.Sprintf("%s%s:%s:", keyDevicePages, f.Status, f.Location)
}

// parseDevicePageKey recupera el filtro de una clave de página.
func parseDevicePageKey(key string) (entity.DeviceFilter, bool) {
	rest, ok := strings.CutPrefix(key, keyDevicePages)
	if !ok {
		return entity.DeviceFilter{}, false
	}
	parts := strings.SplitN(rest, ":", 3)
	if len(parts) != 3 {
		return entity.DeviceFilter{}, false
	}
	return entity.DeviceFilter{
		Status:   entity.DeviceStatus(parts[0]),
		Location: entity.LocationKind(parts[1]),
	}, true
}

func invoiceKey(rentalID int64) string {
	return fmt.Sprintf("%s%d", keyInvoices, rentalID)
}
