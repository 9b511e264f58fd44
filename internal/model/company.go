package model

// CompanyRecord is the unified per-company record flowing through the
// pipeline. Every field besides identity is an optional DataPoint:
// nil means "unknown", never zero.
type CompanyRecord struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`

	// Revenue & financials.
	AnnualRevenue    *DataPoint `json:"annual_revenue,omitempty"`
	OnlineRevenue    *DataPoint `json:"online_revenue,omitempty"`
	RevenueGrowthYoY *DataPoint `json:"revenue_growth_yoy,omitempty"`
	GrossMargin      *DataPoint `json:"gross_margin,omitempty"`
	OperatingMargin  *DataPoint `json:"operating_margin,omitempty"`
	NetIncome        *DataPoint `json:"net_income,omitempty"`

	// Customer & experience metrics.
	CurrentConversionRate  *DataPoint `json:"current_conversion_rate,omitempty"`
	CurrentAOV             *DataPoint `json:"current_aov,omitempty"`
	OrderVolume            *DataPoint `json:"order_volume,omitempty"`
	CurrentChurnRate       *DataPoint `json:"current_churn_rate,omitempty"`
	CustomerCount          *DataPoint `json:"customer_count,omitempty"`
	RevenuePerCustomer     *DataPoint `json:"revenue_per_customer,omitempty"`
	CurrentSupportContacts *DataPoint `json:"current_support_contacts,omitempty"`
	CostPerContact         *DataPoint `json:"cost_per_contact,omitempty"`
	CurrentNPS             *DataPoint `json:"current_nps,omitempty"`
	CustomerLifetimeValue  *DataPoint `json:"customer_lifetime_value,omitempty"`

	// Engagement cost.
	EngagementCost *DataPoint `json:"engagement_cost,omitempty"`

	// Private company specifics.
	TotalFunding       *DataPoint `json:"total_funding,omitempty"`
	EstimatedValuation *DataPoint `json:"estimated_valuation,omitempty"`
}

// fieldAccessor pairs a getter and setter for one data field, so the
// merge and calculation engines iterate fields without reflection.
type fieldAccessor struct {
	get func(*CompanyRecord) *DataPoint
	set func(*CompanyRecord, *DataPoint)
}

// DataFields lists every data field key in declaration order. The merge
// engine folds fields in this order; keys double as the JSON contract.
var DataFields = []string{
	"annual_revenue",
	"online_revenue",
	"revenue_growth_yoy",
	"gross_margin",
	"operating_margin",
	"net_income",
	"current_conversion_rate",
	"current_aov",
	"order_volume",
	"current_churn_rate",
	"customer_count",
	"revenue_per_customer",
	"current_support_contacts",
	"cost_per_contact",
	"current_nps",
	"customer_lifetime_value",
	"engagement_cost",
	"total_funding",
	"estimated_valuation",
}

var fieldAccessors = map[string]fieldAccessor{
	"annual_revenue": {
		get: func(r *CompanyRecord) *DataPoint { return r.AnnualRevenue },
		set: func(r *CompanyRecord, dp *DataPoint) { r.AnnualRevenue = dp },
	},
	"online_revenue": {
		get: func(r *CompanyRecord) *DataPoint { return r.OnlineRevenue },
		set: func(r *CompanyRecord, dp *DataPoint) { r.OnlineRevenue = dp },
	},
	"revenue_growth_yoy": {
		get: func(r *CompanyRecord) *DataPoint { return r.RevenueGrowthYoY },
		set: func(r *CompanyRecord, dp *DataPoint) { r.RevenueGrowthYoY = dp },
	},
	"gross_margin": {
		get: func(r *CompanyRecord) *DataPoint { return r.GrossMargin },
		set: func(r *CompanyRecord, dp *DataPoint) { r.GrossMargin = dp },
	},
	"operating_margin": {
		get: func(r *CompanyRecord) *DataPoint { return r.OperatingMargin },
		set: func(r *CompanyRecord, dp *DataPoint) { r.OperatingMargin = dp },
	},
	"net_income": {
		get: func(r *CompanyRecord) *DataPoint { return r.NetIncome },
		set: func(r *CompanyRecord, dp *DataPoint) { r.NetIncome = dp },
	},
	"current_conversion_rate": {
		get: func(r *CompanyRecord) *DataPoint { return r.CurrentConversionRate },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CurrentConversionRate = dp },
	},
	"current_aov": {
		get: func(r *CompanyRecord) *DataPoint { return r.CurrentAOV },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CurrentAOV = dp },
	},
	"order_volume": {
		get: func(r *CompanyRecord) *DataPoint { return r.OrderVolume },
		set: func(r *CompanyRecord, dp *DataPoint) { r.OrderVolume = dp },
	},
	"current_churn_rate": {
		get: func(r *CompanyRecord) *DataPoint { return r.CurrentChurnRate },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CurrentChurnRate = dp },
	},
	"customer_count": {
		get: func(r *CompanyRecord) *DataPoint { return r.CustomerCount },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CustomerCount = dp },
	},
	"revenue_per_customer": {
		get: func(r *CompanyRecord) *DataPoint { return r.RevenuePerCustomer },
		set: func(r *CompanyRecord, dp *DataPoint) { r.RevenuePerCustomer = dp },
	},
	"current_support_contacts": {
		get: func(r *CompanyRecord) *DataPoint { return r.CurrentSupportContacts },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CurrentSupportContacts = dp },
	},
	"cost_per_contact": {
		get: func(r *CompanyRecord) *DataPoint { return r.CostPerContact },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CostPerContact = dp },
	},
	"current_nps": {
		get: func(r *CompanyRecord) *DataPoint { return r.CurrentNPS },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CurrentNPS = dp },
	},
	"customer_lifetime_value": {
		get: func(r *CompanyRecord) *DataPoint { return r.CustomerLifetimeValue },
		set: func(r *CompanyRecord, dp *DataPoint) { r.CustomerLifetimeValue = dp },
	},
	"engagement_cost": {
		get: func(r *CompanyRecord) *DataPoint { return r.EngagementCost },
		set: func(r *CompanyRecord, dp *DataPoint) { r.EngagementCost = dp },
	},
	"total_funding": {
		get: func(r *CompanyRecord) *DataPoint { return r.TotalFunding },
		set: func(r *CompanyRecord, dp *DataPoint) { r.TotalFunding = dp },
	},
	"estimated_valuation": {
		get: func(r *CompanyRecord) *DataPoint { return r.EstimatedValuation },
		set: func(r *CompanyRecord, dp *DataPoint) { r.EstimatedValuation = dp },
	},
}

// Get returns the DataPoint for the given field key, or nil when the
// field is absent or the key is unknown.
func (r *CompanyRecord) Get(field string) *DataPoint {
	acc, ok := fieldAccessors[field]
	if !ok {
		return nil
	}
	return acc.get(r)
}

// Set stores a DataPoint under the given field key. Returns false for
// unknown keys.
func (r *CompanyRecord) Set(field string, dp *DataPoint) bool {
	acc, ok := fieldAccessors[field]
	if !ok {
		return false
	}
	acc.set(r, dp)
	return true
}

// AvailableFields returns the keys of all populated data fields, in
// declaration order.
func (r *CompanyRecord) AvailableFields() []string {
	var out []string
	for _, f := range DataFields {
		if r.Get(f) != nil {
			out = append(out, f)
		}
	}
	return out
}

// CompletenessScore reports the populated fraction of data fields.
func (r *CompanyRecord) CompletenessScore() float64 {
	filled := 0
	for _, f := range DataFields {
		if r.Get(f) != nil {
			filled++
		}
	}
	return float64(filled) / float64(len(DataFields))
}
