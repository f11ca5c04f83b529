package qtx

import "fmt"

// enlistedResource - диспетчер ресурсов в реестре транзакции вместе с его голосом на фазе подготовки.
type enlistedResource struct {
	participant
	vote Vote
}

// registry - упорядоченные списки участников одной транзакции. Порядок списков - порядок присоединения, он
// никогда не меняется.
type registry struct {
	resources []*enlistedResource
	syncs     []Synchronization
}

func (r *registry) addResource(p participant) {
	r.resources = append(r.resources, &enlistedResource{participant: p})
}

func (r *registry) addSynchronization(s Synchronization) {
	r.syncs = append(r.syncs, s)
}

func (r *registry) isEmpty() bool {
	return len(r.resources) == 0 && len(r.syncs) == 0
}

func (r *registry) clear() {
	r.resources = nil
	r.syncs = nil
}

// snapshot копирует списки для фазы завершения. После начала завершения реестр транзакции не изменяется до clear,
// поэтому копируются только срезы.
func (r *registry) snapshot() registry {
	return registry{
		resources: append([]*enlistedResource(nil), r.resources...),
		syncs:     append([]Synchronization(nil), r.syncs...),
	}
}

// findSameRM ищет среди присоединенных участников тот же диспетчер ресурсов, что и candidate.
// Ошибка или паника IsSameRM означает "не дубликат"; такие сбои возвращаются вызывающему для журналирования.
func findSameRM(candidate RMIdentifier, existing []*enlistedResource) (dup bool, probeErrs []error) {
	for _, er := range existing {
		same, err := probeSameRM(candidate, er.source)
		if err != nil {
			probeErrs = append(probeErrs, err)
			continue
		}
		if same {
			return true, probeErrs
		}
	}
	return false, probeErrs
}

func probeSameRM(candidate, other RMIdentifier) (same bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			same, err = false, fmt.Errorf("IsSameRM panic: %v", r)
		}
	}()
	return candidate.IsSameRM(other)
}

func participantName(p any) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
