package dataset

// Canonical column order of the winequality-red file. The last column is the
// integer quality score; everything before it is a continuous measurement.
var Columns = []string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
	"quality",
}

// QualityColumn is the target column excluded from clustering features.
const QualityColumn = "quality"

// ClusterColumn is the derived column name attached after clustering.
const ClusterColumn = "cluster"

// FieldSummary describes a single column for the schema overview.
type FieldSummary struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"` // "float64" or "int64"
	NonNull  int    `json:"non_null"`
}

// DescribeRow holds the descriptive statistics of one column.
type DescribeRow struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// MissingCount reports how many values of a column are missing (NaN).
type MissingCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// CorrelationMatrix is the full symmetric Pearson correlation matrix over the
// numeric columns, in table column order.
type CorrelationMatrix struct {
	Names  []string    `json:"names"`
	Values [][]float64 `json:"values"`
}

// ClusterResult is the outcome of one clustering run over the standardized
// feature matrix. Centroids are expressed in standardized-feature space.
type ClusterResult struct {
	K           int         `json:"k"`
	Assignments []int       `json:"assignments"`
	Centroids   [][]float64 `json:"centroids"`
	Features    []string    `json:"features"`
	Iterations  int         `json:"iterations"`
	Converged   bool        `json:"converged"`
}

// Sizes returns the number of rows assigned to each cluster.
func (r *ClusterResult) Sizes() []int {
	sizes := make([]int, r.K)
	for _, a := range r.Assignments {
		if a >= 0 && a < r.K {
			sizes[a]++
		}
	}
	return sizes
}
