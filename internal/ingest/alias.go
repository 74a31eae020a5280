package ingest

import (
	"strconv"
	"strings"
)

// Row is one sheet row keyed by normalized header name. An absent key or an
// empty value both mean "null".
type Row map[string]string

// headerReplacer folds the Turkish characters seen in exported sheet headers
// to their ASCII equivalents and turns spaces and periods into underscores.
var headerReplacer = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
	" ", "_", ".", "_",
	"(", "", ")", "",
)

// NormalizeHeader maps an arbitrary sheet column name to the canonical form
// the alias tables are written in.
func NormalizeHeader(raw string) string {
	return strings.ToLower(headerReplacer.Replace(strings.TrimSpace(raw)))
}

// Alias tables per logical field. Resolution is order-sensitive: the first
// alias present with a usable value wins.
var (
	fuelPlateAliases    = []string{"plaka", "plate", "arac", "arac_plaka"}
	fuelAmountAliases   = []string{"yakit_miktari", "miktar", "litre", "lt", "yakit"}
	fuelPriceAliases    = []string{"birim_fiyat", "fiyat", "birim", "price"}
	fuelTotalAliases    = []string{"satir_tutari", "tutar", "total", "toplam"}
	fuelDateAliases     = []string{"islem_tarihi", "tarih"}
	fuelTimeAliases     = []string{"saat"}
	fuelProductAliases  = []string{"stok_adi"}
	fuelOdometerAliases = []string{"km_bilgisi"}

	weightPlateAliases    = []string{"plaka", "plate", "arac"}
	weightNetAliases      = []string{"net_agirlik", "agirlik", "net", "tonaj", "ton"}
	weightDateAliases     = []string{"tarih"}
	weightQuantityAliases = []string{"miktar"}
	weightUnitAliases     = []string{"birim"}
	weightAddressAliases  = []string{"adres"}
	weightPointAliases    = []string{"islem_noktasi"}
	weightCustomerAliases = []string{"cari_adi"}

	trackingPlateAliases    = []string{"plaka", "plate", "arac"}
	trackingKMAliases       = []string{"toplam_kilometre", "kilometre", "km", "mesafe"}
	trackingDriverAliases   = []string{"sofor_adi"}
	trackingGroupsAliases   = []string{"arac_gruplari"}
	trackingDateAliases     = []string{"tarih"}
	trackingMoveFromAliases = []string{"hareket_baslangic_tarihi"}
	trackingMoveToAliases   = []string{"hareket_bitis_tarihi"}
	trackingFromAddrAliases = []string{"baslangic_adresi"}
	trackingToAddrAliases   = []string{"bitis_adresi"}
	trackingMoveDurAliases  = []string{"hareket_suresi"}
	trackingIdleDurAliases  = []string{"rolanti_suresi"}
	trackingParkDurAliases  = []string{"park_suresi"}
	trackingFuelAliases     = []string{"gunluk_yakit_tuketimi_l"}
)

// resolveString returns the first alias value that is present and non-empty
// after trimming, or nil.
func resolveString(row Row, aliases []string) *string {
	for _, alias := range aliases {
		v := strings.TrimSpace(row[alias])
		if v != "" {
			return &v
		}
	}
	return nil
}

// resolveFloat returns the first alias value that parses as a number, or nil.
func resolveFloat(row Row, aliases []string) *float64 {
	for _, alias := range aliases {
		v, ok := parseNumber(row[alias])
		if ok {
			return &v
		}
	}
	return nil
}

// resolvePositive keeps trying later aliases until one yields a value > 0.
// The primary quantities (liters, net weight, kilometers) are meaningless at
// zero, and sheets regularly carry a zero-filled column ahead of the real one.
func resolvePositive(row Row, aliases []string) *float64 {
	for _, alias := range aliases {
		v, ok := parseNumber(row[alias])
		if ok && v > 0 {
			return &v
		}
	}
	return nil
}

func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	// Locale-formatted exports use a decimal comma.
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
