package kpi

import (
	"github.com/rotisserie/eris"
)

// V1 formula implementations for Experience Transformation & Design.
// Each is a pure calculation with no side effects; all monetary values
// stay in the input currency (typically USD).

func conversionRateLift(inputs map[string]float64, liftPct float64) (float64, error) {
	onlineRevenue := inputs["online_revenue"]
	if onlineRevenue < 0 {
		return 0, eris.New("kpi: online_revenue cannot be negative")
	}
	if liftPct < 0 || liftPct > 1.0 {
		return 0, eris.Errorf("kpi: lift_percentage must be 0-1.0, got %v", liftPct)
	}
	return onlineRevenue * liftPct, nil
}

func aovIncrease(inputs map[string]float64, liftPct float64) (float64, error) {
	orderVolume := inputs["order_volume"]
	currentAOV := inputs["current_aov"]
	if orderVolume < 0 {
		return 0, eris.New("kpi: order_volume cannot be negative")
	}
	if currentAOV < 0 {
		return 0, eris.New("kpi: current_aov cannot be negative")
	}
	if liftPct < 0 || liftPct > 1.0 {
		return 0, eris.Errorf("kpi: lift_percentage must be 0-1.0, got %v", liftPct)
	}
	newAOV := currentAOV * (1 + liftPct)
	return orderVolume * (newAOV - currentAOV), nil
}

func churnReduction(inputs map[string]float64, reductionPct float64) (float64, error) {
	churnRate := inputs["current_churn_rate"]
	customerCount := inputs["customer_count"]
	revenuePerCustomer := inputs["revenue_per_customer"]
	if churnRate < 0 || churnRate > 1.0 {
		return 0, eris.Errorf("kpi: current_churn_rate must be 0-1.0, got %v", churnRate)
	}
	if customerCount < 0 {
		return 0, eris.New("kpi: customer_count cannot be negative")
	}
	if revenuePerCustomer < 0 {
		return 0, eris.New("kpi: revenue_per_customer cannot be negative")
	}
	if reductionPct < 0 || reductionPct > 1.0 {
		return 0, eris.Errorf("kpi: reduction_percentage must be 0-1.0, got %v", reductionPct)
	}
	customersAtRisk := churnRate * customerCount
	customersSaved := customersAtRisk * reductionPct
	return customersSaved * revenuePerCustomer, nil
}

func supportCostSavings(inputs map[string]float64, reductionPct float64) (float64, error) {
	contacts := inputs["current_support_contacts"]
	costPerContact := inputs["cost_per_contact"]
	if contacts < 0 {
		return 0, eris.New("kpi: current_support_contacts cannot be negative")
	}
	if costPerContact < 0 {
		return 0, eris.New("kpi: cost_per_contact cannot be negative")
	}
	if reductionPct < 0 || reductionPct > 1.0 {
		return 0, eris.Errorf("kpi: reduction_percentage must be 0-1.0, got %v", reductionPct)
	}
	return contacts * reductionPct * costPerContact, nil
}

func npsReferralRevenue(inputs map[string]float64, npsPointImprovement float64) (float64, error) {
	annualRevenue := inputs["annual_revenue"]
	if annualRevenue < 0 {
		return 0, eris.New("kpi: annual_revenue cannot be negative")
	}
	if npsPointImprovement < 0 {
		return 0, eris.New("kpi: nps_point_improvement cannot be negative")
	}
	return annualRevenue * (npsPointImprovement / 7.0) * 0.01, nil
}

// DefaultRegistry builds the V1 library: the five Experience
// Transformation & Design formulas.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Definition{
			ID:    "conversion_rate_lift",
			Label: "Conversion Rate Improvement",
			Description: "Incremental revenue from higher conversion rates after UX/CX redesign. " +
				"Formula: online_revenue * lift_percentage.",
			RequiredInputs: []string{"online_revenue"},
			BenchmarkInput: "lift_percentage",
			Formula:        conversionRateLift,
			Unit:           "currency",
			Category:       "revenue",
		},
		Definition{
			ID:    "aov_increase",
			Label: "Average Order Value Increase",
			Description: "Revenue gained from higher average order values through improved product " +
				"discovery, recommendations, and checkout UX. Formula: order_volume * current_aov * lift_percentage.",
			RequiredInputs: []string{"order_volume", "current_aov"},
			BenchmarkInput: "lift_percentage",
			Formula:        aovIncrease,
			Unit:           "currency",
			Category:       "revenue",
		},
		Definition{
			ID:    "churn_reduction",
			Label: "Revenue Saved from Churn Reduction",
			Description: "Revenue retained by reducing customer churn through improved experience. " +
				"Formula: churn_rate * reduction_% * customer_count * revenue_per_customer.",
			RequiredInputs: []string{"current_churn_rate", "customer_count", "revenue_per_customer"},
			BenchmarkInput: "reduction_percentage",
			Formula:        churnReduction,
			Unit:           "currency",
			Category:       "retention",
		},
		Definition{
			ID:    "support_cost_savings",
			Label: "Support Cost Savings",
			Description: "Cost savings from reduced support ticket volume after UX improvements. " +
				"Formula: support_contacts * ticket_reduction_% * cost_per_contact.",
			RequiredInputs: []string{"current_support_contacts", "cost_per_contact"},
			BenchmarkInput: "reduction_percentage",
			Formula:        supportCostSavings,
			Unit:           "currency",
			Category:       "cost_savings",
		},
		Definition{
			ID:    "nps_referral_revenue",
			Label: "NPS-Linked Referral Revenue",
			Description: "Revenue growth attributable to NPS improvement via increased referrals. " +
				"Formula: annual_revenue * (nps_improvement / 7) * 0.01.",
			RequiredInputs: []string{"annual_revenue"},
			BenchmarkInput: "nps_point_improvement",
			Formula:        npsReferralRevenue,
			Unit:           "currency",
			Category:       "revenue",
		},
	)
}
