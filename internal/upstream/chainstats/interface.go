package chainstats

type IChainStats interface {
	GetStats() (*Stats, error)
}
