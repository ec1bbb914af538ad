// Package sarima implements the seasonal ARIMA model used for the monthly
// incident outlook. Estimation is by conditional sum of squares with a
// momentum gradient descent, which is robust enough for the short monthly
// series this service works with.
package sarima

import (
	"errors"
	"fmt"
	"math"

	"github.com/sfdatalab/incident_analytics/internal/stats"
	"github.com/sfdatalab/incident_analytics/internal/timeseries"
)

// ErrSeriesTooShort is returned by Fit when the series cannot cover the
// lags the order implies.
var ErrSeriesTooShort = errors.New("series too short for model order")

// Order is the SARIMA model order (p, d, q) x (P, D, Q, m).
type Order struct {
	P, D, Q    int // non-seasonal AR, differencing, MA
	SP, SD, SQ int // seasonal AR, differencing, MA
	M          int // seasonal period (12 for monthly data)
}

// String renders the order in the conventional notation.
func (o Order) String() string {
	return fmt.Sprintf("SARIMA(%d,%d,%d)(%d,%d,%d,%d)", o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
}

// params returns the number of estimated parameters including the intercept.
func (o Order) params() int {
	return o.P + o.Q + o.SP + o.SQ + 1
}

// MinObservations returns the shortest series Fit accepts for this order:
// every implied lag plus a margin for estimation.
func (o Order) MinObservations() int {
	return o.P + o.Q + o.D + (o.SP+o.SD+o.SQ)*o.M + 20
}

// Model is a SARIMA model. Fit it once, then call PredictWithInterval.
type Model struct {
	Order     Order
	AR        []float64
	MA        []float64
	SAR       []float64
	SMA       []float64
	Intercept float64
	Variance  float64
	AIC       float64
	BIC       float64
	LogLik    float64

	fitted    bool
	original  *timeseries.Series
	diffed    *timeseries.Series
	residuals []float64
}

// New creates an unfitted model with the given order.
func New(order Order) *Model {
	return &Model{
		Order: order,
		AR:    make([]float64, order.P),
		MA:    make([]float64, order.Q),
		SAR:   make([]float64, order.SP),
		SMA:   make([]float64, order.SQ),
	}
}

// Fit estimates the model on the series. The series must be long enough to
// cover every lag the order implies plus a margin for estimation.
func (m *Model) Fit(series *timeseries.Series) error {
	o := m.Order
	if minLen := o.MinObservations(); series.Len() < minLen {
		return fmt.Errorf("%w: series has %d observations, %s needs at least %d", ErrSeriesTooShort, series.Len(), o, minLen)
	}

	m.original = series

	diffed := series
	for i := 0; i < o.D; i++ {
		diffed = diffed.Diff()
		if diffed.Len() == 0 {
			return errors.New("differencing resulted in empty series")
		}
	}
	for i := 0; i < o.SD; i++ {
		diffed = diffed.SeasonalDiff(o.M)
		if diffed.Len() == 0 {
			return errors.New("seasonal differencing resulted in empty series")
		}
	}
	m.diffed = diffed

	m.initCoefficients()
	m.optimize()
	m.informationCriteria()

	m.fitted = true
	return nil
}

// initCoefficients seeds AR coefficients from the sample ACF and MA
// coefficients with small values, the same warm start the reference
// CSS estimators use.
func (m *Model) initCoefficients() {
	o := m.Order
	y := m.diffed.Values

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	m.Intercept = mean / float64(len(y))

	if o.P > 0 {
		if acf := stats.ACF(y, o.P); acf != nil {
			for i := 0; i < o.P && i+1 < len(acf); i++ {
				m.AR[i] = acf[i+1] * 0.5
			}
		}
	}
	if o.SP > 0 {
		if acf := stats.ACF(y, o.SP*o.M); acf != nil {
			for i := 0; i < o.SP; i++ {
				idx := (i + 1) * o.M
				if idx < len(acf) {
					m.SAR[i] = acf[idx] * 0.5
				}
			}
		}
	}
	for i := range m.MA {
		m.MA[i] = 0.1
	}
	for i := range m.SMA {
		m.SMA[i] = 0.1
	}
}

// predictAt computes the one-step prediction at index t given the series y
// and residual history.
func (m *Model) predictAt(t int, y, residuals []float64, residualLimit int) float64 {
	o := m.Order
	pred := m.Intercept

	for i := 0; i < o.P && t-i-1 >= 0; i++ {
		pred += m.AR[i] * (y[t-i-1] - m.Intercept)
	}
	for i := 0; i < o.SP; i++ {
		lag := (i + 1) * o.M
		if t-lag >= 0 {
			pred += m.SAR[i] * (y[t-lag] - m.Intercept)
		}
	}
	for i := 0; i < o.Q && t-i-1 >= 0; i++ {
		if t-i-1 < residualLimit {
			pred += m.MA[i] * residuals[t-i-1]
		}
	}
	for i := 0; i < o.SQ; i++ {
		lag := (i + 1) * o.M
		if t-lag >= 0 && t-lag < residualLimit {
			pred += m.SMA[i] * residuals[t-lag]
		}
	}
	return pred
}

// optimize minimizes the conditional sum of squares with momentum gradient
// descent, keeping the best coefficients seen.
func (m *Model) optimize() {
	o := m.Order
	y := m.diffed.Values
	n := len(y)

	const (
		maxIter   = 200
		tolerance = 1e-8
		momentum  = 0.9
		decay     = 0.99
	)
	learningRate := 0.005

	arVel := make([]float64, o.P)
	maVel := make([]float64, o.Q)
	sarVel := make([]float64, o.SP)
	smaVel := make([]float64, o.SQ)

	startIdx := max(max(o.P, o.Q), max(o.SP*o.M, o.SQ*o.M))
	if startIdx >= n-10 {
		startIdx = 0
	}

	bestSSE := math.Inf(1)
	bestAR := make([]float64, o.P)
	bestMA := make([]float64, o.Q)
	bestSAR := make([]float64, o.SP)
	bestSMA := make([]float64, o.SQ)
	noImprove := 0

	for iter := 0; iter < maxIter; iter++ {
		residuals := make([]float64, n)
		sse := 0.0
		for t := startIdx; t < n; t++ {
			residuals[t] = y[t] - m.predictAt(t, y, residuals, n)
			sse += residuals[t] * residuals[t]
		}

		if sse < bestSSE {
			bestSSE = sse
			copy(bestAR, m.AR)
			copy(bestMA, m.MA)
			copy(bestSAR, m.SAR)
			copy(bestSMA, m.SMA)
			noImprove = 0
		} else {
			noImprove++
		}
		if noImprove > 20 {
			break
		}

		arGrad := make([]float64, o.P)
		maGrad := make([]float64, o.Q)
		sarGrad := make([]float64, o.SP)
		smaGrad := make([]float64, o.SQ)

		for t := startIdx; t < n; t++ {
			for i := 0; i < o.P && t-i-1 >= 0; i++ {
				arGrad[i] -= 2 * residuals[t] * (y[t-i-1] - m.Intercept)
			}
			for i := 0; i < o.SP; i++ {
				lag := (i + 1) * o.M
				if t-lag >= 0 {
					sarGrad[i] -= 2 * residuals[t] * (y[t-lag] - m.Intercept)
				}
			}
			for i := 0; i < o.Q && t-i-1 >= 0; i++ {
				maGrad[i] -= 2 * residuals[t] * residuals[t-i-1]
			}
			for i := 0; i < o.SQ; i++ {
				lag := (i + 1) * o.M
				if t-lag >= 0 {
					smaGrad[i] -= 2 * residuals[t] * residuals[t-lag]
				}
			}
		}

		step := func(coeffs, vel, grad []float64) {
			for i := range coeffs {
				vel[i] = momentum*vel[i] + learningRate*grad[i]/float64(n)
				coeffs[i] -= vel[i]
				coeffs[i] = clamp(coeffs[i], -0.99, 0.99)
			}
		}
		step(m.AR, arVel, arGrad)
		step(m.SAR, sarVel, sarGrad)
		step(m.MA, maVel, maGrad)
		step(m.SMA, smaVel, smaGrad)

		learningRate *= decay

		if iter > 0 && math.Abs(sse-bestSSE) < tolerance {
			break
		}
	}

	copy(m.AR, bestAR)
	copy(m.MA, bestMA)
	copy(m.SAR, bestSAR)
	copy(m.SMA, bestSMA)

	// Final pass: residuals and variance with the best coefficients.
	m.residuals = make([]float64, n)
	for t := 0; t < n; t++ {
		m.residuals[t] = y[t] - m.predictAt(t, y, m.residuals, n)
	}

	sse := 0.0
	count := 0
	for t := startIdx; t < n; t++ {
		sse += m.residuals[t] * m.residuals[t]
		count++
	}
	if count > m.Order.params() {
		m.Variance = sse / float64(count-m.Order.params())
	} else if count > 0 {
		m.Variance = sse / float64(count)
	}
}

func (m *Model) informationCriteria() {
	n := len(m.residuals)
	k := float64(m.Order.params())

	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}

	if m.Variance > 0 {
		m.LogLik = -float64(n)/2*math.Log(2*math.Pi) - float64(n)/2*math.Log(m.Variance) - sse/(2*m.Variance)
	} else {
		m.LogLik = math.Inf(-1)
	}

	m.AIC = -2*m.LogLik + 2*k
	m.BIC = -2*m.LogLik + k*math.Log(float64(n))
}

// Residuals returns a copy of the model residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// PredictWithInterval forecasts steps values ahead on the original scale,
// with prediction intervals at the given confidence level. Interval width
// grows with the horizon for integrated and seasonally integrated series.
func (m *Model) PredictWithInterval(steps int, confidence float64) (forecasts, lower, upper []float64, err error) {
	if !m.fitted {
		return nil, nil, nil, errors.New("model must be fitted before prediction")
	}
	if steps < 1 {
		return nil, nil, nil, errors.New("steps must be at least 1")
	}
	if confidence <= 0 || confidence >= 1 {
		confidence = 0.95
	}

	y := m.diffed.Values
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)
	extResiduals := make([]float64, n+steps)
	copy(extResiduals, m.residuals)

	// Future residuals are zero in expectation, so MA terms only draw on
	// the observed part of the residual history.
	for h := 0; h < steps; h++ {
		t := n + h
		extY[t] = m.predictAt(t, extY, extResiduals, n)
	}

	forecasts = make([]float64, steps)
	copy(forecasts, extY[n:])
	forecasts = m.integrate(forecasts)

	z := normalQuantile((1 + confidence) / 2)
	lower = make([]float64, steps)
	upper = make([]float64, steps)

	for h := 0; h < steps; h++ {
		se := math.Sqrt(m.Variance)
		if m.Order.D > 0 {
			se *= math.Sqrt(float64(h + 1))
		}
		if m.Order.SD > 0 && m.Order.M > 0 {
			se *= math.Sqrt(float64(h/m.Order.M + 1))
		}
		lower[h] = forecasts[h] - z*se
		upper[h] = forecasts[h] + z*se
	}

	return forecasts, lower, upper, nil
}

// integrate undoes the differencing applied in Fit, seasonal first, then
// non-seasonal, so forecasts land back on the original scale.
func (m *Model) integrate(forecasts []float64) []float64 {
	o := m.Order
	original := m.original.Values
	n := len(original)

	result := make([]float64, len(forecasts))
	copy(result, forecasts)

	// Non-seasonally differenced history, needed as the base for seasonal
	// integration.
	base := original
	for i := 0; i < o.D; i++ {
		if len(base) <= 1 {
			break
		}
		next := make([]float64, len(base)-1)
		for j := 1; j < len(base); j++ {
			next[j-1] = base[j] - base[j-1]
		}
		base = next
	}

	if o.SD > 0 && o.M > 0 {
		nBase := len(base)
		for i := 0; i < o.SD; i++ {
			for j := 0; j < len(result); j++ {
				if j < o.M {
					idx := nBase - o.M + j
					if idx >= 0 && idx < nBase {
						result[j] += base[idx]
					}
				} else {
					result[j] += result[j-o.M]
				}
			}
		}
	}

	for i := 0; i < o.D; i++ {
		lastVal := original[n-1]
		for j := 0; j < len(result); j++ {
			if j == 0 {
				result[j] += lastVal
			} else {
				result[j] += result[j-1]
			}
		}
	}

	return result
}

// normalQuantile approximates the standard normal quantile (Abramowitz &
// Stegun 26.2.23).
func normalQuantile(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	if p < 0.5 {
		return -normalQuantile(1 - p)
	}

	t := math.Sqrt(-2 * math.Log(1-p))
	c0, c1, c2 := 2.515517, 0.802853, 0.010328
	d1, d2, d3 := 1.432788, 0.189269, 0.001308

	return t - (c0+c1*t+c2*t*t)/(1+d1*t+d2*t*t+d3*t*t*t)
}

func clamp(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
