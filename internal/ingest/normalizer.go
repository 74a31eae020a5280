package ingest

import (
	"fleet-telemetry-service/internal/model"
)

// defaultProductName is assumed when a fuel sheet has no product column;
// the fleet runs on diesel unless the station report says otherwise.
const defaultProductName = "MOTORIN"

// Discard signals that a row failed mandatory-field resolution. It is a
// value, not an error: a discarded row is counted and processing continues.
type Discard struct {
	Reason string
}

func discard(reason string) *Discard {
	return &Discard{Reason: reason}
}

// FuelFromRow maps a raw fuel sheet row to a FuelRecord, or reports why the
// row must be skipped. The record carries no content hash yet.
func FuelFromRow(row Row) (*model.FuelRecord, *Discard) {
	plate := resolveString(row, fuelPlateAliases)
	if plate == nil {
		return nil, discard("missing plate")
	}
	amount := resolvePositive(row, fuelAmountAliases)
	if amount == nil {
		return nil, discard("missing or non-positive fuel amount")
	}

	rec := &model.FuelRecord{
		Plate:       *plate,
		FuelAmount:  *amount,
		ProductName: defaultProductName,
	}
	if v := resolveFloat(row, fuelPriceAliases); v != nil {
		rec.UnitPrice = *v
	}
	if v := resolveFloat(row, fuelTotalAliases); v != nil {
		rec.LineTotal = *v
	}
	if v := resolveString(row, fuelDateAliases); v != nil {
		rec.TransactionDate = normalizedDate(*v)
	}
	rec.Time = resolveString(row, fuelTimeAliases)
	if v := resolveString(row, fuelProductAliases); v != nil {
		rec.ProductName = *v
	}
	// Zero odometer readings mean "not captured", not "at zero".
	rec.OdometerKM = resolvePositive(row, fuelOdometerAliases)
	return rec, nil
}

// WeightFromRow maps a raw weighbridge sheet row to a WeightRecord.
func WeightFromRow(row Row) (*model.WeightRecord, *Discard) {
	plate := resolveString(row, weightPlateAliases)
	if plate == nil {
		return nil, discard("missing plate")
	}
	net := resolvePositive(row, weightNetAliases)
	if net == nil {
		return nil, discard("missing or non-positive net weight")
	}

	rec := &model.WeightRecord{
		Plate:     *plate,
		NetWeight: *net,
	}
	if v := resolveString(row, weightDateAliases); v != nil {
		rec.Date = normalizedDate(*v)
	}
	rec.Quantity = resolveFloat(row, weightQuantityAliases)
	rec.Unit = resolveString(row, weightUnitAliases)
	rec.Address = resolveString(row, weightAddressAliases)
	rec.ProcessingPoint = resolveString(row, weightPointAliases)
	rec.CustomerName = resolveString(row, weightCustomerAliases)
	return rec, nil
}

// TrackingFromRow maps a raw vehicle-tracking export row to a TrackingSegment.
func TrackingFromRow(row Row) (*model.TrackingSegment, *Discard) {
	plate := resolveString(row, trackingPlateAliases)
	if plate == nil {
		return nil, discard("missing plate")
	}
	km := resolvePositive(row, trackingKMAliases)
	if km == nil {
		return nil, discard("missing or non-positive total km")
	}

	seg := &model.TrackingSegment{
		Plate:   *plate,
		TotalKM: *km,
	}
	seg.DriverName = resolveString(row, trackingDriverAliases)
	seg.VehicleGroups = resolveString(row, trackingGroupsAliases)
	if v := resolveString(row, trackingDateAliases); v != nil {
		seg.Date = normalizedDate(*v)
	}
	seg.MovementStart = resolveString(row, trackingMoveFromAliases)
	seg.MovementEnd = resolveString(row, trackingMoveToAliases)
	seg.StartAddress = resolveString(row, trackingFromAddrAliases)
	seg.EndAddress = resolveString(row, trackingToAddrAliases)
	seg.MovementDuration = resolveString(row, trackingMoveDurAliases)
	seg.IdleDuration = resolveString(row, trackingIdleDurAliases)
	seg.ParkedDuration = resolveString(row, trackingParkDurAliases)
	seg.DailyFuelLiters = resolveFloat(row, trackingFuelAliases)
	return seg, nil
}

func normalizedDate(raw string) *string {
	d := NormalizeDate(raw)
	return &d
}
