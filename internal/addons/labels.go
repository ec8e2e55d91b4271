package addons

import (
	"bytes"
	"fmt"
	"io"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/util/yaml"
	sigsyaml "sigs.k8s.io/yaml"
)

// Labels stamped on every rendered manifest document. The cluster-service
// label doubles as the apply/prune selector, so an object missing it would
// escape reconciliation entirely.
const (
	labelManagedBy      = "cdk-addons"
	labelClusterService = "kubernetes.io/cluster-service"
)

// injectLabels sets the management labels on every document of a
// multi-document YAML stream, insert-or-overwrite, and re-serializes the
// stream. Returns the labeled stream and the number of non-empty
// documents; an input of only empty documents yields a zero count.
func injectLabels(manifests []byte) ([]byte, int, error) {
	decoder := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(manifests), 4096)

	var docs [][]byte
	for {
		// Decode into a plain map so kindless or empty documents pass
		// through without a missing-kind error.
		var obj map[string]interface{}
		if err := decoder.Decode(&obj); err != nil {
			if err == io.EOF {
				break
			}
			return nil, 0, fmt.Errorf("failed to decode YAML document: %w", err)
		}

		// Skip empty documents
		if len(obj) == 0 {
			continue
		}
		raw := unstructured.Unstructured{Object: obj}

		labels := raw.GetLabels()
		if labels == nil {
			labels = make(map[string]string, 2)
		}
		labels[labelManagedBy] = "true"
		labels[labelClusterService] = "true"
		raw.SetLabels(labels)

		out, err := sigsyaml.Marshal(raw.Object)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal YAML document: %w", err)
		}
		docs = append(docs, out)
	}

	var buf bytes.Buffer
	for i, doc := range docs {
		if i > 0 {
			buf.WriteString("---\n")
		}
		buf.Write(doc)
	}

	return buf.Bytes(), len(docs), nil
}
