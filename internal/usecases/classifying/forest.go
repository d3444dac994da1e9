package classifying

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

const numClasses = 2

var (
	ErrNotFitted     = errors.New("forest is not fitted")
	ErrShapeMismatch = errors.New("features and labels have different lengths")
	ErrInvalidLabel  = errors.New("labels must be 0 or 1")
)

type treeNode struct {
	leaf      bool
	proba     [numClasses]float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

func (n *treeNode) predict(x []float64) [numClasses]float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.proba
}

// RandomForest é uma floresta de árvores de decisão binárias com impureza de Gini,
// amostras bootstrap e sqrt(n_features) atributos sorteados por divisão.
// Árvores crescem sem limite de profundidade até as folhas ficarem puras.
type RandomForest struct {
	trees       []*treeNode
	nTrees      int
	seed        uint64
	nFeatures   int
	maxFeatures int
}

func NewRandomForest(nTrees int, seed uint64) *RandomForest {
	if nTrees <= 0 {
		nTrees = 100
	}
	return &RandomForest{nTrees: nTrees, seed: seed}
}

// Fit treina a floresta. Rótulos devem ser 0 ou 1.
func (f *RandomForest) Fit(x [][]float64, y []int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return ErrInsufficientSamples
	}
	for _, label := range y {
		if label < 0 || label >= numClasses {
			return fmt.Errorf("%w: %d", ErrInvalidLabel, label)
		}
	}

	f.nFeatures = len(x[0])
	f.maxFeatures = max(1, int(math.Sqrt(float64(f.nFeatures))))

	rng := newRand(f.seed)
	f.trees = make([]*treeNode, f.nTrees)
	for t := range f.trees {
		treeRng := newRand(rng.Uint64())

		sample := make([]int, len(x))
		for i := range sample {
			sample[i] = treeRng.IntN(len(x))
		}

		b := &treeBuilder{x: x, y: y, rng: treeRng, maxFeatures: f.maxFeatures}
		f.trees[t] = b.build(sample)
	}

	return nil
}

// PredictProba retorna a média das probabilidades das árvores para cada amostra
func (f *RandomForest) PredictProba(x [][]float64) ([][numClasses]float64, error) {
	if len(f.trees) == 0 {
		return nil, ErrNotFitted
	}

	out := make([][numClasses]float64, len(x))
	for i, row := range x {
		if len(row) != f.nFeatures {
			return nil, fmt.Errorf("%w: amostra %d tem %d atributos, esperado %d", ErrShapeMismatch, i, len(row), f.nFeatures)
		}
		for _, tree := range f.trees {
			p := tree.predict(row)
			for c := range p {
				out[i][c] += p[c]
			}
		}
		for c := range out[i] {
			out[i][c] /= float64(len(f.trees))
		}
	}
	return out, nil
}

// Predict escolhe a classe de maior probabilidade média. Empate fica com a classe menor.
func (f *RandomForest) Predict(x [][]float64) ([]int, error) {
	proba, err := f.PredictProba(x)
	if err != nil {
		return nil, err
	}

	pred := make([]int, len(proba))
	for i, p := range proba {
		if p[1] > p[0] {
			pred[i] = 1
		}
	}
	return pred, nil
}

type treeBuilder struct {
	x           [][]float64
	y           []int
	rng         *rand.Rand
	maxFeatures int
}

func (b *treeBuilder) build(samples []int) *treeNode {
	counts := b.classCounts(samples)
	node := &treeNode{leaf: true}
	for c := range counts {
		node.proba[c] = float64(counts[c]) / float64(len(samples))
	}

	// min_samples_split = 2 e nó puro vira folha
	if len(samples) < 2 || counts[0] == 0 || counts[1] == 0 {
		return node
	}

	feature, threshold, ok := b.bestSplit(samples)
	if !ok {
		return node
	}

	left := make([]int, 0, len(samples))
	right := make([]int, 0, len(samples))
	for _, s := range samples {
		if b.x[s][feature] <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	node.leaf = false
	node.feature = feature
	node.threshold = threshold
	node.left = b.build(left)
	node.right = b.build(right)
	return node
}

// bestSplit sorteia a ordem dos atributos e avalia até maxFeatures atributos não
// constantes. Se nenhum dos sorteados dividir o nó, continua nos demais.
func (b *treeBuilder) bestSplit(samples []int) (int, float64, bool) {
	features := b.rng.Perm(len(b.x[samples[0]]))

	bestImpurity := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0
	visited := 0

	for _, feature := range features {
		if visited >= b.maxFeatures && bestFeature >= 0 {
			break
		}

		threshold, impurity, ok := b.splitOn(samples, feature)
		if !ok {
			continue
		}
		visited++

		if impurity < bestImpurity {
			bestImpurity = impurity
			bestFeature = feature
			bestThreshold = threshold
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

// splitOn encontra o limiar de menor impureza ponderada no atributo. O limiar fica
// no ponto médio entre dois valores consecutivos distintos.
func (b *treeBuilder) splitOn(samples []int, feature int) (float64, float64, bool) {
	sorted := make([]int, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return b.x[sorted[i]][feature] < b.x[sorted[j]][feature]
	})

	total := b.classCounts(sorted)
	var left [numClasses]int
	n := len(sorted)

	bestImpurity := math.Inf(1)
	bestThreshold := 0.0
	found := false

	for i := 0; i < n-1; i++ {
		left[b.y[sorted[i]]]++

		current := b.x[sorted[i]][feature]
		next := b.x[sorted[i+1]][feature]
		if current == next {
			continue
		}

		nLeft := i + 1
		nRight := n - nLeft
		var right [numClasses]int
		for c := range right {
			right[c] = total[c] - left[c]
		}

		impurity := (float64(nLeft)*gini(left, nLeft) + float64(nRight)*gini(right, nRight)) / float64(n)
		if impurity < bestImpurity {
			bestImpurity = impurity
			bestThreshold = current + (next-current)/2
			// Ponto médio arredondado para cima pode coincidir com next
			if bestThreshold >= next {
				bestThreshold = current
			}
			found = true
		}
	}

	return bestThreshold, bestImpurity, found
}

func (b *treeBuilder) classCounts(samples []int) [numClasses]int {
	var counts [numClasses]int
	for _, s := range samples {
		counts[b.y[s]]++
	}
	return counts
}

func gini(counts [numClasses]int, n int) float64 {
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		sum += p * p
	}
	return 1 - sum
}
