package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lord-inventory/internal/domain/entity"
)

// Suggestion recomendación de compra para un producto bajo su nivel deseado.
type Suggestion struct {
	ProductID     string
	ProductName   string
	CurrentStock  decimal.Decimal
	Min           decimal.Decimal
	Des           decimal.Decimal
	Missing       decimal.Decimal // Des - CurrentStock
	UnitCost      decimal.Decimal // costo actual del producto, no el histórico de entradas
	EstimatedCost decimal.Decimal // Missing * UnitCost
	Priority      entity.Priority
	Action        string
}

// PurchasePlan sugerencias ordenadas por prioridad más los agregados del panel.
type PurchasePlan struct {
	Suggestions        []Suggestion
	AlertCount         int // productos bajo el mínimo
	ReorderCount       int // productos entre mínimo y deseado
	EstimatedTotalCost decimal.Decimal
}

// Simulation resultado de repartir un presupuesto sobre las sugerencias.
type Simulation struct {
	Budget    decimal.Decimal
	Accepted  []Suggestion
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// SuggestPurchases recorre el ledger y genera una sugerencia por cada producto con stock < Des.
// Orden: high antes que medium; empates conservan el orden de los productos.
func SuggestPurchases(l *entity.Ledger) PurchasePlan {
	plan := PurchasePlan{Suggestions: []Suggestion{}}
	for _, p := range l.Products {
		stock := CurrentStock(p)
		if !stock.LessThan(p.Des) {
			continue
		}
		missing := p.Des.Sub(stock)
		estimated := missing.Mul(p.Cost)

		priority := entity.PriorityMedium
		if stock.LessThan(p.Min) {
			priority = entity.PriorityHigh
			plan.AlertCount++
		} else {
			plan.ReorderCount++
		}
		plan.EstimatedTotalCost = plan.EstimatedTotalCost.Add(estimated)

		plan.Suggestions = append(plan.Suggestions, Suggestion{
			ProductID:     p.ID,
			ProductName:   p.Name,
			CurrentStock:  stock,
			Min:           p.Min,
			Des:           p.Des,
			Missing:       missing,
			UnitCost:      p.Cost,
			EstimatedCost: estimated,
			Priority:      priority,
			Action:        priority.Action(),
		})
	}

	sort.SliceStable(plan.Suggestions, func(i, j int) bool {
		return plan.Suggestions[i].Priority.Rank() < plan.Suggestions[j].Priority.Rank()
	})
	return plan
}

// Simulate acepta sugerencias en el orden recibido mientras el acumulado no supere el presupuesto.
// Se detiene en la primera que no cabe: no retrocede ni busca una combinación mejor.
func Simulate(budget decimal.Decimal, suggestions []Suggestion) Simulation {
	sim := Simulation{Budget: budget, Accepted: []Suggestion{}}
	for _, s := range suggestions {
		next := sim.Spent.Add(s.EstimatedCost)
		if next.GreaterThan(budget) {
			break
		}
		sim.Spent = next
		sim.Accepted = append(sim.Accepted, s)
	}
	sim.Remaining = budget.Sub(sim.Spent)
	return sim
}
