// Package app holds the request resolution and dispatch pipeline:
// profile selection and precedence ([Resolver]), body specs ([BodyResolver]),
// the gql rewrite ([GraphQLRequest]), response rendering ([Renderer]), the
// config subcommands ([ProfileService]) and the [Runner] tying them together.
package app
