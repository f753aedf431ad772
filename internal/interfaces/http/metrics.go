package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// movimentacoesRegistradas conta os lançamentos aceitos, por origem
// (estoque|caixa) e tipo (entrada|saida).
var movimentacoesRegistradas = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "chaveiro_movimentacoes_registradas_total",
	Help: "Total de movimentações registradas com sucesso.",
}, []string{"origem", "tipo"})
