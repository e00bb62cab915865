// Twoip is a command line client for the 2ip geolocation API.
//
// Idea is simple: you have an IP address like 192.0.2.1. And you want
// to know which country and city it belongs to, or which provider
// announces it. The API answers both questions and this tool gives you
// a terminal and an HTTP way of asking.
//
// Twoiplib
//
// twoiplib is a main package of this module which contains Client and
// all logic related to lookups: address normalization, concurrent
// batching, response parsing, caching and output rendering. It has its
// own API and can be used as a library on its own.
//
// Api
//
// This package wires a Client into an HTTP router: single and batch
// lookups plus usage statistics, all over plain JSON.
//
// Twoip
//
// A main package itself is an example of how to wire both twoiplib and
// api. Resulting binary renders lookups as tables, CSV or JSON and can
// start a local HTTP service.
package main
