// Package addons renders and applies the cluster addon manifests.
//
// The render pipeline substitutes runtime configuration into the shipped
// templates, stamps the management labels on every manifest document, and
// writes the result to the addon directory. The apply pipeline reconciles
// the live cluster against that directory with kubectl: the DNS service
// first, then the whole directory with pruning enabled.
package addons
